// Package watcher implements the watch mode: it follows a directory with
// fsnotify and reports files that were created or saved, once their events have
// settled for a debounce window. Word processors write a document in several
// steps, so the handler only runs after the file has been quiet for a while.
package watcher
