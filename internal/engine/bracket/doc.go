// Package bracket implements lexical bracket matching for cursor
// highlighting: given an immutable view of a document's lines and a
// cursor position, find the pair of matching brackets the cursor touches
// or encloses. The scan is purely lexical — it does not know about
// strings or comments and will match across them.
package bracket
