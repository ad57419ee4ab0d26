// Package study contains the Study aggregate, the radiology study record bound
// 1:1 to an order. The study carries the scheduling metadata exchanged with the
// modality worklist: the study instance UID, the DICOM procedure step statuses,
// and the worklist synchronization status that records the outcome of the last
// worklist notification.
//
// The synchronization status is the single source of truth the order lifecycle
// handlers consult to decide whether a local mutation is safe to commit. It is
// written only by the worklist gateway and read by re-fetching the study after
// the gateway call.
package study
