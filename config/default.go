package config

// DefaultAPIURL is the public GitHub REST API endpoint.
const DefaultAPIURL = "https://api.github.com/"

func GetDefault() Config {
	return Config{
		APIURL: DefaultAPIURL,
	}
}
