// Package schema derives the declared field list of a struct type at runtime
// and binds struct values to the fieldaccess contract without generated code.
//
// Declaration rules, shared with fieldaccess-gen:
//   - the tag key is "fieldaccess";
//   - `fieldaccess:"-"` or `fieldaccess:"skip"` excludes a field;
//   - a blank marker field of type struct{} tagged "public" restricts the
//     struct to its exported fields;
//   - blank fields are never declared and embedded fields use their type name;
//   - unknown options are reported as *TagError.
//
// Schemas are built on first use and cached in a Registry.
package schema
