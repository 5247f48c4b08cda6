// Package web hosts the server-rendered blog front end.
//
// Requests flow through the root middleware chain into feature modules
// (home, posts index, post detail, crawler documents). Modules read posts
// through the blog service, which keeps one cached copy of the upstream
// post list, and render templ components with htmx fragments for search
// and pagination.
package web
