// Package metadata resolves spec folders into catalog records.
//
// A folder is a spec when it holds either a structured source document
// (Overview.bs by default) or a plain HTML document (Overview.html). Structured
// sources are read through a Reader, either the native metadata-block parser
// or an external command, then normalized through the shortname rename table
// and the year-snapshot rule. Plain HTML specs infer shortname and level from
// the folder name and take their title from the document's <title>.
package metadata
