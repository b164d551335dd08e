// Package services implements the driving ports using the extraction
// stages and driven ports.
//
// Services contain orchestration only: the extraction stages are pure
// transforms, and the parser service fans the independent ones out and
// joins their results into a StructuredNote.
package services
