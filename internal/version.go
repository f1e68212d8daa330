package internal

// Version is the current flipcard version
const Version = "0.1.0"
