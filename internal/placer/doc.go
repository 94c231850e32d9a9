// Package placer relocates one file at a time into the output tree, routing
// photos and videos to their configured roots and delegating destination
// naming to the naming package.
package placer
