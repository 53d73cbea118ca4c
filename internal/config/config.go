package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OutputFile is where the CSV sink writes the collection
	OutputFile string
	// JSONOutputFile is where the file sink writes when JSON output is selected
	JSONOutputFile string
	// WriteJSON switches the file sink from CSV to JSON
	WriteJSON bool
	// PostURL, when non-empty, selects the remote-submission sink
	PostURL string
	// RequestsPerSecond bounds how fast listing pages are fetched (0 disables the limit)
	RequestsPerSecond int
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("OutputFile", "tech-books.csv")
	viper.SetDefault("JSONOutputFile", "tech-books.json")
	viper.SetDefault("RequestsPerSecond", 2)

	// Get values from viper
	OutputFile = viper.GetString("OutputFile")
	JSONOutputFile = viper.GetString("JSONOutputFile")
	WriteJSON = viper.GetBool("WriteJSON")
	PostURL = viper.GetString("PostURL")
	RequestsPerSecond = viper.GetInt("RequestsPerSecond")
}

// SetOutputFile sets the CSV output path
func SetOutputFile(path string) {
	OutputFile = path
}

// SetJSONOutputFile sets the JSON output path
func SetJSONOutputFile(path string) {
	JSONOutputFile = path
}

// SetWriteJSON sets the JSON file-sink flag
func SetWriteJSON(writeJSON bool) {
	WriteJSON = writeJSON
}

// SetPostURL sets the remote-submission destination
func SetPostURL(url string) {
	PostURL = url
}
