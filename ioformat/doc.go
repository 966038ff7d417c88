// Package ioformat is the text I/O boundary: parsers that populate a
// core.Graph from an edges file, a sources file, and a targets file, and
// writers that emit the path-output and edge-output report files.
//
// The edges file ("name1 TYPE name2 = weight", TYPE in (pp)/(pd)) is parsed
// with a participle grammar — one line is one grammar production. Sources
// (one name per line) and targets (one name plus an optional numeric
// field) are scanned line by line with bufio.Scanner and strconv instead:
// a full grammar would be overkill for that shape.
package ioformat
