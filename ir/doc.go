// Package ir contains the go-rjson value model: an ordered,
// comment-carrying tree of objects, arrays, and scalars shared by the
// relaxed and strict parsers and by the writer.
//
// A value is a *Node tagged by its Type:
//   - NullType: null
//   - BoolType: true/false
//   - NumberType: a finite double-precision number
//   - StringType: immutable text
//   - ArrayType: ordered elements in Values
//   - ObjectType: ordered members in Names/Values; duplicate names are
//     preserved and lookups are last-write-wins
//   - ExtensionType: an opaque host value paired with the provider that
//     recognized it
//
// Every node carries three optional comment slots (leading, trailing,
// interior) holding comment text with the marker punctuation stripped,
// two layout hints (Condensed, LineLength) learned by the parser or set
// by the caller, and an Accessed flag used for unused-field auditing.
package ir
