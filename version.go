package winnow

// Version is the release of the winnow library and CLI.
const Version = "0.3.0"
