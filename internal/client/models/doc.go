// Package models defines the records the console exchanges with the user
// directory and keeps in its local overlay.
package models
