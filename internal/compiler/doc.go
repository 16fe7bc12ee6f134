// Package compiler turns dialog script text into a validated domain.NodeList.
//
// A script is a sequence of records, each starting with a tag line:
//
//	1  Question:    success, fail, variable, then prompt lines
//	2  Branching:   variable, question text, then "<text>:<destination>" lines
//	3  Terminating: one message line
//
// Prompt and option lists end at end of input, at a blank line, or at a line
// that is exactly a tag ("1", "2" or "3"). A prompt or option can therefore
// never be the bare text "1", "2" or "3"; such a line always opens the next
// record. Option lists also end at a line without ":".
//
// Lines may end in "\n" or "\r\n"; nothing else is trimmed. The first
// violation is reported as a *ParseError carrying its 1-based line number.
package compiler
