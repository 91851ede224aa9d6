package handler

// APIPrefix is the base path of the versioned API.
const APIPrefix = "/api/v1"

// Path parameter names.
const (
	paramID = "id"
)
