// Package model contains the data shapes shared by the service and handler layers.
package model

// Salutation is a greeting word in one language.
type Salutation struct {
	Language string `json:"language"`
	Word     string `json:"word"`
}

// Salutations is the built-in catalog, in display order.
var Salutations = []Salutation{
	{Language: "en", Word: "Hello"},
	{Language: "es", Word: "Hola"},
	{Language: "fr", Word: "Bonjour"},
	{Language: "de", Word: "Hallo"},
	{Language: "it", Word: "Ciao"},
	{Language: "pt", Word: "Olá"},
	{Language: "nl", Word: "Hallo"},
	{Language: "sw", Word: "Jambo"},
	{Language: "yo", Word: "Bawo"},
	{Language: "ja", Word: "Konnichiwa"},
}
