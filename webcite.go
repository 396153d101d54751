// Package webcite turns a web page into a citation. Given a URL it fetches
// the page, infers bibliographic metadata (title, authors, publication year,
// site name) from <meta> tags and the <title> element, renders an
// approximate APA-style web reference, and emits a RIS record suitable for
// import into reference managers such as EndNote or Zotero.
//
// This package contains domain types, pure selection and formatting logic,
// and interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/).
package webcite
