// Package sicxe implements a two-pass assembler for the SIC/XE instruction set.
//
// Source text is split into statements by the line parser, assigned
// addresses by pass 1, resolved into a symbol table, and encoded into
// object code by pass 2. Format 3 and 4 operands select between immediate,
// indirect, simple and indexed addressing, and format 3 displacements are
// resolved PC-relative, base-relative or direct in that order.
//
// The object program records (H/T/M/E) are produced by the htme package.
package sicxe
