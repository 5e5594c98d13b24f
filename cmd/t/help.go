package main

import "fmt"

const usage = `t - a compact command language for text manipulation

Usage:
  t [flags] <programme> [file...]
  cmd | t [flags] <programme>

Flags:
  -p <prog>      the programme to run (overrides the positional argument)
  -i <file>      input file path (repeatable); defaults to stdin
  -j, --json     render output as JSON
  -c <file>      configuration file path
  -o <file>      write output atomically to this file instead of stdout
  --interactive  run the interactive preview loop
  -v             verbose logging
  -h, --help     show this help
  --version      show version

Operators:
  s, S<delim>    split leaf text one level finer (lines into words, ...)
  j, J<delim>    join: flatten one nesting level, or collapse to text
  l, L<sel>      lowercase
  u, U<sel>      uppercase
  t, T<sel>      trim whitespace
  n, N<sel>      parse as number (text left unchanged on failure)
  r<sel>/p/r/    regex replace
  /pat/  !/pat/  keep / drop rows matching a regex
  m/pat/         extract all regex matches per row
  d, D<sel>      dedupe with counts
  o, O           sort descending / ascending
  x              drop empty elements
  g<sel>         group by a selection
  #              count elements
  +              sum elements
  c, C<delim>    columnate (align into columns)
  p<sel>         partition by truthiness of a selection
  @, ^           descend / ascend focus depth (output unchanged)
  ;              no-op
  <sel>          bare selection (indices and slices, comma-separated)

Example - top 20 most frequent words, lowercased:
  t 'sjldo:20' file.txt
`

func showHelp() {
	fmt.Print(usage)
}
