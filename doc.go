/*
Package pixini parses, queries, mutates and serializes INI files while
preserving what most parsers throw away: comments, section order,
inline annotations, quoting and comma-separated arrays all survive a
full read-modify-write cycle.

Parsing a file and serializing it again reproduces the same sections,
keys, values, arrays and comments in the same order. Blank lines are
cosmetic; they are regenerated from options rather than preserved.

# Syntax

An INI file consists of lines. A line whose first non-whitespace
character is a semicolon (';') is a comment:

	;this file configures the flux capacitor

A line starting with '[' and containing a later ']' opens a section;
the text between the brackets (trimmed) is its name, and an optional
inline comment may follow the closing bracket:

	[Delorean] ;the car

A line containing the key/value separator ('=' unless configured
otherwise) is a key/value pair. Keys end at the first whitespace
character; values may carry an inline comment after an unescaped ';':

	speed=88 ;mph

An unquoted value containing commas is a CSV array; each token is
trimmed:

	previous_owners=Doc, Marty, Biff

Wrapping a value in single or double quotes keeps embedded commas
literal and records the quote character for serialization:

	motto="Roads? Where we're going, we don't need roads."

Keys appearing before any section header belong to the default
section, addressed through DefaultSection or the empty string. Section
and key lookup is case-insensitive; original casing is kept for
output. Lines matching none of the forms above are ignored: parsing
never fails on malformed text.

# Reading and writing

Parse, ParseString, Load and LoadFile build a document. Get, GetArray
and their typed variants read from it; Set, SetArray, their typed
variants and Delete modify it; String, Lines, WriteTo and SaveFile
serialize it. A Pixini is not safe for concurrent use.
*/
package pixini
