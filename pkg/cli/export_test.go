package cli

// NewApp is exported for testing
var NewApp = newApp
