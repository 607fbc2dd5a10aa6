// Package editor holds one page builder instance: its options, component
// types, document tree, views, block categories and modules.
//
// Every editor owns private registries. Two editors in the same process
// never share types, nodes or views, so a plugin extending one editor
// leaves the others untouched.
package editor
