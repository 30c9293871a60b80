// Package autoindent holds the pure helper functions Document consults when
// a user presses enter, types a closing bracket, or types an opener that
// should be auto-paired. None of these functions touch a document directly;
// they take leading whitespace, adjacent characters, and line sources as
// plain values and return what the caller should insert or delete.
package autoindent
