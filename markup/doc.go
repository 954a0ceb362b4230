// Package markup provides the node-tree capabilities that wiki tables are
// parsed from and built into.
//
// Trees are ordinary [golang.org/x/net/html] nodes. The package adds the
// operations the table code needs on top of them:
//
//   - Loading: [ParseHTML], [ParseXML] and [ParseMarkdown] turn a byte stream
//     into a tree, and [Open] picks a loader based on the file format.
//   - Navigation: [ElementChildren], [FirstElementChild], [LastElementChild],
//     [FindAll], [Find], [Attr] and [TextContent].
//   - Creation: [NewDocument], [NewElement], [NewText] and [SetAttr].
//   - Rendering: [RenderXHTML] writes the XML form used by Confluence
//     storage format (empty elements are self-closed), [RenderHTML] writes
//     HTML5.
//
// # Element children
//
// Navigation helpers look at element nodes only. Whitespace text and
// comments between rows and cells are ignored, so pretty-printed markup
// produces the same rows and cells as compact markup.
package markup
