// Package vault persists the single image reference chosen through
// "Continue with Google". It copies the picked image into a fixed sandbox
// path, remembers its URI in the key-value store, and on load drops
// references whose local file has disappeared.
package vault
