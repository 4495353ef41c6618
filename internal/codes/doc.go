// Package codes loads error code definitions from an INI source into an
// ordered, read-only Model.
//
// Sections name categories and keys name entries:
//
//	[IO]
//	ReadFailed = 100, disk read failed
//	WriteFailed = 101
//
// Section and key names keep their exact spelling. The value is split on its
// first comma: the leading field is a base-10 integer, anything after the
// comma is kept verbatim as the entry message.
package codes
