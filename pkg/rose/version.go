package rose

// Version is the release version of the rose module and CLI.
const Version = "0.3.0"
