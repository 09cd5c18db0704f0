package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jruizdesign/HotelManagement/internal/adapters/apiclient"
)

const usage = `roomctl - front desk operations against a running dashboard API

Usage:
  roomctl [-addr URL] rooms
  roomctl [-addr URL] bookings
  roomctl [-addr URL] logs
  roomctl [-addr URL] stats
  roomctl [-addr URL] set-status <room-id> <status>
  roomctl [-addr URL] book <guest> <room-id> <check-in> <check-out>
`

func main() {
	addr := flag.String("addr", "http://localhost:8080", "dashboard API base URL")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cl, err := apiclient.New(*addr, 10)
	if err != nil {
		fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch args[0] {
	case "rooms":
		rooms, err := cl.Rooms(ctx)
		if err != nil {
			fatal(err)
		}
		tw := newTable()
		fmt.Fprintln(tw, "ID\tNUMBER\tTYPE\tFLOOR\tPRICE\tSTATUS")
		for _, r := range rooms {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.2f\t%s\n", r.ID, r.Number, r.Type, r.Floor, r.Price, r.Status)
		}
		tw.Flush()

	case "bookings":
		bookings, err := cl.Bookings(ctx)
		if err != nil {
			fatal(err)
		}
		tw := newTable()
		fmt.Fprintln(tw, "ID\tGUEST\tROOM\tCHECK-IN\tCHECK-OUT\tTOTAL\tSTATUS")
		for _, b := range bookings {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%.2f\t%s\n", b.ID, b.GuestName, b.RoomID, b.CheckIn, b.CheckOut, b.Total, b.Status)
		}
		tw.Flush()

	case "logs":
		logs, err := cl.Logs(ctx)
		if err != nil {
			fatal(err)
		}
		tw := newTable()
		fmt.Fprintln(tw, "WHEN\tACTION\tDETAILS")
		for _, e := range logs {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Timestamp.Format(time.RFC3339), e.Action, e.Details)
		}
		tw.Flush()

	case "stats":
		st, err := cl.Stats(ctx)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("rooms: %d total, %d available, %d occupied, %d cleaning, %d maintenance\n",
			st.TotalRooms, st.Available, st.Occupied, st.Cleaning, st.Maintenance)
		fmt.Printf("occupancy: %.0f%%, pending check-ins: %d\n", st.OccupancyRate, st.PendingCheckIns)

	case "set-status":
		if len(args) != 3 {
			flag.Usage()
			os.Exit(2)
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fatal(fmt.Errorf("room id %q is not a number", args[1]))
		}
		room, err := cl.SetRoomStatus(ctx, id, args[2])
		if err != nil {
			fatal(err)
		}
		fmt.Printf("room %s is now %s\n", room.Number, room.Status)

	case "book":
		if len(args) != 5 {
			flag.Usage()
			os.Exit(2)
		}
		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			fatal(fmt.Errorf("room id %q is not a number", args[2]))
		}
		b, err := cl.Book(ctx, args[1], id, args[3], args[4])
		if err != nil {
			fatal(err)
		}
		fmt.Printf("booked %s: room %d for %s, %s to %s, total %.2f\n",
			b.ID, b.RoomID, b.GuestName, b.CheckIn, b.CheckOut, b.Total)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "roomctl:", err)
	os.Exit(1)
}
