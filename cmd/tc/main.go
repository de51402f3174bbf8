// tc is a personal timecard CLI on top of the KingTime attendance API.
//
// Usage:
//
//	tc status                        print today's work state
//	tc in|out|break-start|break-end  punch now
//	tc ls [start [end]]              list time records for a date range
//	tc export -o FILE [start [end]]  export a date range to an .xlsx file
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kintai-tools/kingtime-go/cmd/tc/helper"
	v1 "github.com/kintai-tools/kingtime-go/kingtime/v1"
	"github.com/kintai-tools/kingtime-go/kingtime/v1/common"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: tc <status|in|out|break-start|break-end|ls|export> [args]")
	}

	ctx := context.Background()
	cfg, err := loadConfig(ctx)
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	client := v1.NewKingtimeClient(cfg.BaseURL)

	switch cmd := os.Args[1]; cmd {
	case "status":
		runStatus(ctx, cfg, client)
	case "in":
		runPunch(ctx, cfg, client, common.CodeIn)
	case "out":
		runPunch(ctx, cfg, client, common.CodeOut)
	case "break-start":
		runPunch(ctx, cfg, client, common.CodeBreakStart)
	case "break-end":
		runPunch(ctx, cfg, client, common.CodeBreakEnd)
	case "ls":
		runList(ctx, cfg, client, os.Args[2:])
	case "export":
		runExport(ctx, cfg, client, os.Args[2:])
	default:
		log.Fatalf("unknown command: %s", cmd)
	}
}

// employeeKey resolves the configured employee number into the opaque key
// the timerecord endpoints require. Resolved per invocation, never cached.
func employeeKey(ctx context.Context, cfg *Config, client *v1.KingtimeClient) string {
	emp, err := client.Employees.Get(ctx, cfg.AccessToken, cfg.EmployeeNumber)
	if err != nil {
		log.Fatalf("resolve employee %s: %v", cfg.EmployeeNumber, err)
	}
	return emp.Key
}

func runStatus(ctx context.Context, cfg *Config, client *v1.KingtimeClient) {
	key := employeeKey(ctx, cfg, client)
	today := common.NewDateOnly(time.Now().In(common.JST))

	records, err := client.TimeRecords.GetForEmployee(ctx, cfg.AccessToken, key, today)
	if err != nil {
		log.Fatalf("fetch time records: %v", err)
	}
	fmt.Println(helper.StatusLine(records))
}

func runPunch(ctx context.Context, cfg *Config, client *v1.KingtimeClient, code common.Code) {
	key := employeeKey(ctx, cfg, client)
	now := time.Now()

	req := &v1.TimeRecordRequest{
		Date: common.NewDateOnly(now.In(common.JST)),
		Time: common.NewJSTTime(now),
		Code: code,
	}
	if err := client.TimeRecords.Post(ctx, cfg.AccessToken, key, req); err != nil {
		log.Fatalf("submit %s punch: %v", code, err)
	}

	message := fmt.Sprintf("recorded %s at %s", code, req.Time.In(common.JST).Format("15:04:05"))
	fmt.Println(message)
	if err := notifySlack(cfg, message); err != nil {
		log.Printf("slack notification: %v", err)
	}
}

func fetchRange(ctx context.Context, cfg *Config, client *v1.KingtimeClient, args []string) []v1.DailyWorkingsDTO {
	start, end, err := helper.ParseRange(args, time.Now())
	if err != nil {
		log.Fatalf("date range: %v", err)
	}

	key := employeeKey(ctx, cfg, client)
	groups, err := client.TimeRecords.Get(ctx, cfg.AccessToken, []string{key}, start, end)
	if err != nil {
		log.Fatalf("fetch time records: %v", err)
	}
	return groups
}

func runList(ctx context.Context, cfg *Config, client *v1.KingtimeClient, args []string) {
	groups := fetchRange(ctx, cfg, client, args)

	for _, group := range groups {
		for _, dw := range group.DailyWorkings {
			records := make([]v1.TimeRecordDTO, len(dw.TimeRecord))
			copy(records, dw.TimeRecord)
			helper.SortByTime(records)

			for _, r := range records {
				fmt.Printf("%s  %s  %s\n", dw.Date, r.Time.In(common.JST).Format("15:04:05"), r.Code)
			}
		}
	}
}

func runExport(ctx context.Context, cfg *Config, client *v1.KingtimeClient, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	output := fs.String("o", "", "output .xlsx path")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("export: %v", err)
	}
	if *output == "" {
		log.Fatalf("export: -o FILE is required")
	}

	groups := fetchRange(ctx, cfg, client, fs.Args())
	if err := helper.WriteXLSX(*output, groups); err != nil {
		log.Fatalf("export: %v", err)
	}
	fmt.Printf("wrote %s\n", *output)
}
