// Package asm implements the two pass assembler for the VC-3600.
//
// Pass I classifies every source line and records the location of each
// label in a SymbolTable. Pass II re-reads the source, translates every
// line into a six digit machine word, prints a listing, and collects the
// words into a Program for the emulator.
//
// Numeric fields may use $(...) compile-time expressions, evaluated with
// Starlark against the predefined constants and, for operands, the labels.
package asm
