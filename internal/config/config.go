package config // package config loads application configuration from environment variables

import (
    "log"     // log reports configuration errors and halts execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Strings for identifiers and secrets, ints
// for durations, costs and prices.
type Config struct {
    Env            string // application environment (e.g. "dev", "prod")
    Port           string // HTTP port to listen on
    MongoURI       string // MongoDB connection string
    MongoDB        string // MongoDB database name
    JWTSecret      string // secret used to sign JWTs
    AccessTTLMin   int    // access token time-to-live in minutes
    RefreshTTLDays int    // refresh token time-to-live in days
    BcryptCost     int    // bcrypt cost for password hashing

    StandardPriceCents int // per-seat price for the standard experience
    VIPPriceCents      int // per-seat price for the VIP experience
    HallRows           int // seat grid rows per hall
    HallColumns        int // seat grid columns per hall
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing
// values cause the program to exit with a fatal log message.  Pricing
// and layout have storefront defaults.
func Load() Config {
    return Config{
        Env:            must("APP_ENV"),    // environment (dev/test/prod)
        Port:           must("APP_PORT"),   // port to bind the HTTP server
        MongoURI:       must("MONGO_URI"),  // document store connection string
        MongoDB:        must("MONGO_DB"),   // document store database name
        JWTSecret:      must("JWT_SECRET"), // secret used for signing JWTs
        AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
        RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
        BcryptCost:     mustInt("BCRYPT_COST"),

        StandardPriceCents: intDefault("TICKET_PRICE_STANDARD_CENTS", 850),
        VIPPriceCents:      intDefault("TICKET_PRICE_VIP_CENTS", 1200),
        HallRows:           intDefault("HALL_ROWS", 4),
        HallColumns:        intDefault("HALL_COLUMNS", 6),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an
// integer.  If conversion fails, the application logs a fatal error and
// exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// intDefault reads an optional integer variable, falling back to def
// when unset and exiting on malformed values.
func intDefault(key string, def int) int {
    s, ok := os.LookupEnv(key)
    if !ok || s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
