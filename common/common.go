package common

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID is the GCP project hosting the Firestore database.
	ProjectID string

	GAEService string

	GAEVersion string

	Env string

	// Production flag indicating if app is running the production backend on appengine
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const productionProject = "triggerkit-prod"

func init() {
	initEnvVariables()
}

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")

	if ProjectID == "" {
		log.Fatalln("environment variable GOOGLE_CLOUD_PROJECT is not set")
	}

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	GAEService = GetEnv("GAE_SERVICE", "scheduled-webhooks")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	if value := os.Getenv("FIRESTORE_EMULATOR_HOST"); value != "" {
		log.Printf("Using Firestore Emulator: %s", value)
	}

	if ProjectID == productionProject {
		Env = "production"
		Production = true
	} else {
		Env = "development"
	}
}

// GetEnv returns the value of the environment variable named by key, or
// fallback when it is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
