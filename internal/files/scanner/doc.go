// Package scanner expands command-line paths into the list of comps
// documents they name. Directories are walked recursively and contribute
// every *.xml file in lexical order.
package scanner
