// Package exchange provides the mail/calendar data source backing the
// assistant's capability map. The MockSource implementation serves a local
// JSON dataset (protagonist, user directory, emails, meetings) and answers
// inbox, calendar, search and directory queries; Tools adapts a Source into
// the name -> callable capability map the action framework consumes, with
// every capability returning a JSON document string.
//
// Live Graph/EWS adapters are intentionally out of scope; they would slot in
// as additional Source implementations without touching the tool layer.
package exchange
