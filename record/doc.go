// Package record reads and writes fixed-width records made of signed overpunch
// fields.
//
// A Layout lists the fields of a record in order. Each field has a name, a
// picture clause that sets its implied decimal places, and a width in bytes.
// Layouts are usually kept as YAML next to the copybook they come from:
//
//	name: claim
//	fields:
//	  - name: amount
//	    picture: s9(7)v99
//	    width: 9
//	  - name: quantity
//	    picture: 9(5)v999
//	    width: 8
//
// The record for an amount of -12.34 and a quantity of 3 is the 17 byte string:
//
//	| 0 . . . . . . . 8 | 9 . . . . . . 16 |
//	|-------------------|------------------|
//	| 0 0 0 0 0 1 2 3 M | 0 0 0 0 3 0 0 {  |
//	|-------------------|------------------|
//	| amount            | quantity         |
//
// Encoded fields are left padded with zeros to the field width.
package record
