// Package session is the single source of truth for "who is logged in".
// It derives the identity from the persisted bearer token, replaces it on
// login/register, and clears it on logout. Each operation returns a
// displayable Result instead of raising; pages read the Session snapshot
// and never mutate it.
package session
