/*
Package cdhit runs the CD-HIT family of sequence clustering programs.

CD-HIT ships as a set of sibling executables (cd-hit, cd-hit-est, cd-hit-2d,
cd-hit-est-2d and cd-hit-454) installed into a single directory. A Tool asks a
Locator for the path of the primary cd-hit binary, derives the sibling path of
the requested program and runs it with "-i <input> -o <output>" followed by
the caller's options.

Options are kept in insertion order so the same Options always produce the
same command line. A flag whose value is Absent is emitted on its own, which
is how switches without an argument are passed. Extra arguments may also be
given as a single shell-quoted string; it is split with POSIX quoting rules and
malformed quoting is reported as an error.

Nothing is retried. The output files are whatever the external program writes.
*/
package cdhit
