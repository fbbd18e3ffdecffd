package handler

// APIPrefix is the unversioned base path kept for the original greeting endpoint.
const APIPrefix = "/api"

// APIV1Prefix is the canonical base path for public HTTP API v1.
const APIV1Prefix = "/api/v1"
