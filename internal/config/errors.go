package config

import "errors"

var (
	// ErrMissingMongoURI indicates that the MongoDB connection string is not configured
	ErrMissingMongoURI = errors.New("mongoUri is required in configuration")

	// ErrConfigFileNotFound indicates that the config file was not found
	ErrConfigFileNotFound = errors.New("configuration file not found")

	// ErrInvalidConfigFormat indicates that the config file has invalid JSON
	ErrInvalidConfigFormat = errors.New("invalid configuration file format")
)
