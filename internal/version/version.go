package version

// Version is the gbsplit release version.
const Version = "0.1.0"
