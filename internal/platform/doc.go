package platform

// Package platform contains OS/platform integration: file URIs, sandbox
// directories, and the file service used to copy, probe, and delete the
// locally stored login image.
