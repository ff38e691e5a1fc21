// Package state holds the picker session: everything the UI shows and edits.
//
// # Overview
//
// Session is a plain value. Operations take a Session and return a new one,
// and the Bubble Tea model keeps the current value. There is no store, lock
// or shared pointer: the UI goroutine is the only owner, and the background
// subprocess readers deliver output as messages that Update applies with
// AppendOutput.
//
// # Send Lifecycle
//
//	Idle ──BeginSend──→ Sending ──CompleteSend──→ Completed ──ExpireBanner──→ Idle
//	                      │  ↑
//	                      └──┘ AppendOutput
//
//   - BeginSend refuses with ErrSendInFlight while Sending and otherwise
//     clears the output of the previous send.
//   - CompleteSend runs mailer.Interpret on the accumulated output. It is
//     called only after the Done event, so no chunk can arrive later.
//   - On success the queue and the selected contact are cleared. On failure
//     both are kept for a retry.
//   - ExpireBanner carries the BannerSeq it was scheduled with. A timer left
//     over from an earlier send does not end a newer banner.
//
// # Copy Semantics
//
// Queue mutations clone the queue first and logtail.Buffer copies by
// value, so an older Session kept by a caller (for example a test comparing
// before and after) never changes.
package state
