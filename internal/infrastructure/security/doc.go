// Package security implements session tokens, password hashing and the
// in-process token blacklist used by the session guards.
package security
