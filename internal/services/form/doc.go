// Package form owns the submission cycle of the prediction form.
//
// Field values are parsed when they are entered, so a bad value is reported
// against its field before anything is sent. Submit runs one prediction at a
// time: while a request is in flight the form is busy and further submissions
// are refused with domain.ErrBusy. The previous result and error are cleared
// when a submission starts, and the busy flag is cleared when it ends, however
// it ends.
package form
