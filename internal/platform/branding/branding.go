// Package branding centralizes product naming for user-facing surfaces.
package branding

// AppName is the user-facing product name.
const AppName = "Agent de recherche d'entreprise"
