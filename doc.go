// Package cqlpager turns a paged remote query result into pull-style and
// push-style consumption contracts.
/*
A result is delivered one bounded page at a time. result.Set retrieves rows
one by one, in batches or all at once, fetching the next page only when the
buffer is drained. result.Stream pushes rows to a handler and honours
pause and resume requests of the consumer.

Cassandra queries are paged with cassandra.Execute, any other source may
implement source.Page.
*/
package cqlpager
