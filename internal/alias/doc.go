// Package alias plans and materializes shortname aliases: a path named after
// a spec family that leads to the family's current-work folder. Aliases are
// written either as relative symlinks or as folders holding a meta-refresh
// index.html.
package alias
