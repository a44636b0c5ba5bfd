// Package config holds the environment-sourced settings of the chatbot:
// provider credentials and base URLs, the default model and provider, and the
// log level.
//
// Values are read once at startup with [Load] (dotenv files plus the process
// environment) or [FromEnv] (environment only) and then passed by value. No
// validation happens here; a missing credential only surfaces when the
// provider factory tries to use it.
package config
