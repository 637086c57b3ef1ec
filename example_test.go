package cqlpager_test

import (
	"context"
	"fmt"
	"os"

	"github.com/gocql/gocql"

	"github.com/cqlpager/cqlpager"
	"github.com/cqlpager/cqlpager/result"
	"github.com/cqlpager/cqlpager/source"
)

var columns = result.Columns{{Name: "id", Type: "int"}, {Name: "name", Type: "varchar"}}

func staticValues() [][]any {
	return [][]any{
		{1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}, {5, "e"},
	}
}

func Example_several() {
	ctx := context.TODO()
	rs := cqlpager.New(source.StaticRows(columns, 2, staticValues()...))

	rows, err := rs.Several(ctx, 3).Await(ctx)
	if err != nil {
		fmt.Printf("unexpected error: %v\n", err)

		return
	}
	for _, row := range rows {
		fmt.Println(row.Values()...)
	}
	fmt.Println("buffered:", rs.AvailableWithoutFetching())
	// Output:
	// 1 a
	// 2 b
	// 3 c
	// buffered: 1
}

func Example_stream() {
	ctx := context.TODO()
	rs := cqlpager.New(source.StaticRows(columns, 2, staticValues()...))

	s := rs.Stream(ctx)
	s.EndHandler(func() {
		fmt.Println("end")
	}).ExceptionHandler(func(err error) {
		fmt.Printf("unexpected error: %v\n", err)
	}).Handler(func(row result.Row) {
		name, _ := row.Value("name")
		fmt.Println(name)
	})
	<-s.Done()
	// Output:
	// a
	// b
	// c
	// d
	// e
	// end
}

func Example_execute() {
	ctx := context.TODO()
	cluster := gocql.NewCluster("127.0.0.1")
	cluster.Keyspace = "cqlpager"
	session, err := cluster.CreateSession()
	if err != nil {
		fmt.Printf("failed to connect: %v\n", err)

		return
	}
	defer session.Close()

	rs, err := cqlpager.Execute(ctx, session.Query("SELECT id, name FROM users"),
		cqlpager.WithPageSize(100),
	)
	if err != nil {
		fmt.Printf("failed to execute query: %v\n", err)

		return
	}
	n, err := rs.Collect(ctx, func(row result.Row) error {
		_, err := fmt.Fprintln(os.Stdout, row.Values()...)

		return err
	}).Await(ctx)
	if err != nil {
		fmt.Printf("failed to read rows: %v\n", err)

		return
	}
	fmt.Println("rows:", n)
}
