// Package errx provides structured, code-based errors for the errcodegen CLI.
//
// Each error carries:
//   - A stable 5-digit error code (e.g., "72000" for malformed config errors)
//   - A category description (e.g., "Malformed config")
//   - A user-facing message
//   - Optional structured context (key-value pairs such as section and key)
//   - Optional cause and base sentinel errors
//
// The first two digits of a code name the domain:
//   - 70xxx: CLI/argument validation errors
//   - 71xxx: Source access errors
//   - 72xxx: Malformed config errors
//   - 73xxx: Render errors
//   - 74xxx: Output/write errors
//   - 75xxx: Formatter errors
//   - 79xxx: Settings errors
//
// The last three digits are reserved for subcodes.
//
// Example usage:
//
//	err := errx.WrapMalformed("invalid code for IO.Bad", parseErr).
//		WithContext("section", "IO").
//		WithContext("key", "Bad").
//		WithBase(sentinelErr)
//
//	fmt.Println(errx.UserString(err))  // User-friendly message
//	fmt.Println(errx.DebugString(err)) // Full debug details
package errx
