// Package mnemonic builds assembly instructions and renders them as source
// lines with explanatory comments.
//
// Every Mnemonic has a Kind, which fixes how many operands it accepts and
// how its default comment reads. The Generic kind accepts any operands; the
// arithmetic kinds (Add, Sub, Div, Mul, Inc, Dec) and the data movement
// kinds (Mov, Push, Pop) require an exact count. New kinds are added with
// Register.
package mnemonic
