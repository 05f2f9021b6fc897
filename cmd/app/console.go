package main

import (
	"StudentPlanner/internal/api/finance"
	"StudentPlanner/internal/api/planner"
	"StudentPlanner/internal/config"
	contextPkg "StudentPlanner/pkg/context"
	"StudentPlanner/pkg/log"
	"StudentPlanner/pkg/notifier"
	"StudentPlanner/pkg/response"
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// consoleNotifier is the toast stand-in: transient messages go straight to the
// terminal.
type consoleNotifier struct{}

func newConsoleNotifier() *consoleNotifier {
	return &consoleNotifier{}
}

func (n *consoleNotifier) Notify(level notifier.Level, message string) {
	symbol := "ℹ"
	switch level {
	case notifier.LevelSuccess:
		symbol = "✔"
	case notifier.LevelWarning:
		symbol = "⚠"
	}

	fmt.Printf("%s %s\n", symbol, message)
}

// runConsole is a minimal presentation layer over the command surface. It
// resolves list positions to stable ids before calling any service, so a
// stale number can never delete the wrong course.
func runConsole(ctx context.Context, session *config.Session) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Student Planner Pro - ketik 'help' untuk daftar perintah")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, " ", 2)
		command := strings.ToLower(parts[0])
		args := ""
		if len(parts) > 1 {
			args = strings.TrimSpace(parts[1])
		}

		log.Debug(log.Fields{
			"command": command,
		}, "Executing console command")

		switch command {
		case "help":
			printHelp()
		case "courses":
			listCourses(ctx, session)
		case "add-course":
			addCourse(ctx, session, args)
		case "del-course":
			deleteCourse(ctx, session, scanner, args)
		case "add-task":
			addTask(ctx, session, args)
		case "toggle":
			toggleTask(ctx, session, args)
		case "task":
			taskDetail(ctx, session, args)
		case "deadlines":
			listDeadlines(ctx, session, args)
		case "schedule":
			showSchedule(ctx, session, args)
		case "cash":
			listCash(ctx, session)
		case "add-cash":
			addCash(ctx, session, args)
		case "stats":
			showStats(ctx, session)
		case "export":
			exportSnapshot(ctx, session)
		case "darkmode":
			setDarkMode(ctx, session, args)
		case "clear":
			clearAll(ctx, session, scanner)
		case "exit", "quit":
			fmt.Println("Sampai jumpa!")
			return
		default:
			fmt.Printf("⚠ Perintah tidak dikenal: %s\n", command)
		}
	}
}

// printError renders validation problems as warnings; persistence failures
// are logged with a trace id the user can report.
func printError(ctx context.Context, err error) {
	if response.CodeOf(err) >= 500 {
		traceID := log.ErrorWithTraceID(log.Fields{
			"session_id": contextPkg.GetSessionID(ctx),
			"error":      err.Error(),
		}, "Console command failed")
		fmt.Printf("✖ %s (trace %s)\n", err.Error(), traceID)
		return
	}

	fmt.Printf("⚠ %s\n", err.Error())
}

func printHelp() {
	fmt.Println(`Perintah:
  courses                                  daftar mata kuliah
  add-course nama|hari|mulai|selesai|ruang|catatan
  del-course N                             hapus mata kuliah ke-N
  add-task N teks|deadline|prioritas|catatan
  toggle N M                               tandai tugas M pada mata kuliah N
  task N M                                 detail tugas
  deadlines [hari]                         deadline mendatang
  schedule [offset]                        jadwal mingguan
  cash                                     daftar transaksi + ringkasan
  add-cash tanggal|deskripsi|jumlah|tipe
  stats                                    statistik lengkap
  export                                   backup data ke file JSON
  darkmode on|off
  clear                                    hapus semua data
  exit`)
}

func fields(args string, n int) []string {
	result := make([]string, n)
	for i, field := range strings.SplitN(args, "|", n) {
		result[i] = strings.TrimSpace(field)
	}
	return result
}

func courseAt(ctx context.Context, session *config.Session, arg string) (planner.CourseResponse, bool) {
	index, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		fmt.Println("⚠ Nomor mata kuliah tidak valid")
		return planner.CourseResponse{}, false
	}

	courses, err := session.Planner().GetCourses(ctx)
	if err != nil {
		printError(ctx, err)
		return planner.CourseResponse{}, false
	}

	if index < 1 || index > len(courses) {
		fmt.Println("⚠ Mata kuliah tidak ditemukan")
		return planner.CourseResponse{}, false
	}

	return courses[index-1], true
}

func listCourses(ctx context.Context, session *config.Session) {
	courses, err := session.Planner().GetCourses(ctx)
	if err != nil {
		printError(ctx, err)
		return
	}

	if len(courses) == 0 {
		fmt.Println("Belum ada mata kuliah. Tambahkan dengan add-course!")
		return
	}

	for i, course := range courses {
		slot := ""
		if course.DayName != "" && course.StartTime != "" {
			slot = fmt.Sprintf(" (%s, %s - %s)", course.DayName, course.StartTime, course.EndTime)
		}
		fmt.Printf("%d. %s%s | %d/%d tugas selesai\n",
			i+1, course.Name, slot, course.Progress.Completed, course.Progress.Total)

		for j, task := range course.Tasks {
			mark := " "
			if task.Done {
				mark = "x"
			}
			fmt.Printf("   %d. [%s] %s (%s, %s)\n", j+1, mark, task.Text, task.Priority, task.RelativeDeadline)
		}
	}
}

func addCourse(ctx context.Context, session *config.Session, args string) {
	f := fields(args, 6)
	_, err := session.Planner().CreateCourse(ctx, planner.CreateCourseRequest{
		Name:      f[0],
		Day:       f[1],
		StartTime: f[2],
		EndTime:   f[3],
		Room:      f[4],
		Note:      f[5],
	})
	if err != nil {
		printError(ctx, err)
	}
}

func deleteCourse(ctx context.Context, session *config.Session, scanner *bufio.Scanner, args string) {
	course, ok := courseAt(ctx, session, args)
	if !ok {
		return
	}

	fmt.Printf("Hapus %s? Semua tugas akan ikut terhapus. (y/N) ", course.Name)
	if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
		fmt.Println("Dibatalkan")
		return
	}

	if err := session.Planner().DeleteCourse(ctx, course.ID); err != nil {
		printError(ctx, err)
	}
}

func addTask(ctx context.Context, session *config.Session, args string) {
	parts := strings.SplitN(args, " ", 2)
	if len(parts) < 2 {
		fmt.Println("⚠ Format: add-task N teks|deadline|prioritas|catatan")
		return
	}

	course, ok := courseAt(ctx, session, parts[0])
	if !ok {
		return
	}

	f := fields(parts[1], 4)
	_, err := session.Planner().CreateTask(ctx, planner.CreateTaskRequest{
		CourseID: course.ID,
		Text:     f[0],
		Deadline: f[1],
		Priority: f[2],
		Note:     f[3],
	})
	if err != nil {
		printError(ctx, err)
	}
}

func taskRef(ctx context.Context, session *config.Session, args string) (courseID string, taskID string, ok bool) {
	parts := strings.Fields(args)
	if len(parts) < 2 {
		fmt.Println("⚠ Format: N M")
		return "", "", false
	}

	course, ok := courseAt(ctx, session, parts[0])
	if !ok {
		return "", "", false
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil || index < 1 || index > len(course.Tasks) {
		fmt.Println("⚠ Tugas tidak ditemukan")
		return "", "", false
	}

	return course.ID, course.Tasks[index-1].ID, true
}

func toggleTask(ctx context.Context, session *config.Session, args string) {
	courseID, taskID, ok := taskRef(ctx, session, args)
	if !ok {
		return
	}

	if _, err := session.Planner().ToggleTask(ctx, courseID, taskID); err != nil {
		printError(ctx, err)
	}
}

func taskDetail(ctx context.Context, session *config.Session, args string) {
	courseID, taskID, ok := taskRef(ctx, session, args)
	if !ok {
		return
	}

	detail, err := session.Planner().TaskDetail(ctx, courseID, taskID)
	if err != nil {
		printError(ctx, err)
		return
	}

	status := "⏳ Belum Selesai"
	if detail.Task.Done {
		status = "✅ Selesai"
	}

	fmt.Printf("📚 Mata Kuliah: %s\n📝 Deskripsi: %s\n⏰ Deadline: %s\n🎯 Prioritas: %s\n",
		detail.CourseName, detail.Task.Text, detail.DeadlineAt, detail.Task.Priority)
	if detail.Task.Note != "" {
		fmt.Printf("📌 Catatan: %s\n", detail.Task.Note)
	}
	fmt.Printf("Status: %s\n", status)
}

func listDeadlines(ctx context.Context, session *config.Session, args string) {
	withinDays := 0
	if trimmed := strings.TrimSpace(args); trimmed != "" {
		withinDays, _ = strconv.Atoi(trimmed)
	}

	entries, err := session.Planner().UpcomingTasks(ctx, withinDays)
	if err != nil {
		printError(ctx, err)
		return
	}

	if len(entries) == 0 {
		fmt.Println("Tidak ada deadline mendatang")
		return
	}

	for _, entry := range entries {
		urgent := ""
		if entry.Task.Urgent {
			urgent = " [!]"
		}
		fmt.Printf("- %s (%s): %s, %d hari lagi%s\n",
			entry.Task.Text, entry.CourseName, entry.Task.RelativeDeadline, entry.Task.DaysUntil, urgent)
	}
}

func showSchedule(ctx context.Context, session *config.Session, args string) {
	offset := 0
	if trimmed := strings.TrimSpace(args); trimmed != "" {
		offset, _ = strconv.Atoi(trimmed)
	}

	schedule, err := session.Planner().WeeklySchedule(ctx, offset)
	if err != nil {
		printError(ctx, err)
		return
	}

	fmt.Printf("Jadwal: %s\n", schedule.Label)
	for _, day := range schedule.Days {
		today := ""
		if day.IsToday {
			today = " (Hari Ini)"
		}
		fmt.Printf("%s%s\n", day.DayName, today)

		if len(day.Courses) == 0 {
			fmt.Println("  Tidak ada kelas")
			continue
		}
		for _, course := range day.Courses {
			room := ""
			if course.Room != "" {
				room = fmt.Sprintf(" @ %s", course.Room)
			}
			fmt.Printf("  %s - %s %s%s\n", course.StartTime, course.EndTime, course.Name, room)
		}
	}
}

func listCash(ctx context.Context, session *config.Session) {
	transactions, err := session.Finance().GetTransactions(ctx)
	if err != nil {
		printError(ctx, err)
		return
	}

	for _, transaction := range transactions {
		sign := "+"
		if transaction.Type == "expense" {
			sign = "-"
		}
		fmt.Printf("%s  %s  %s%s\n",
			transaction.FormattedDate, transaction.Desc, sign, transaction.FormattedAmount)
	}

	summary, err := session.Finance().Summary(ctx)
	if err != nil {
		printError(ctx, err)
		return
	}

	fmt.Printf("Masuk: %.0f | Keluar: %.0f | Saldo: %.0f\n",
		summary.TotalIncome, summary.TotalExpense, summary.Balance)
}

func addCash(ctx context.Context, session *config.Session, args string) {
	f := fields(args, 4)
	amount, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		fmt.Println("⚠ Harap isi semua field dengan benar!")
		return
	}

	_, err = session.Finance().CreateTransaction(ctx, finance.CreateTransactionRequest{
		Date:   f[0],
		Desc:   f[1],
		Amount: amount,
		Type:   f[3],
	})
	if err != nil {
		printError(ctx, err)
	}
}

func showStats(ctx context.Context, session *config.Session) {
	stats, err := session.Overview().Stats(ctx)
	if err != nil {
		printError(ctx, err)
		return
	}

	fmt.Printf("Mata kuliah: %d\nTugas: %d (%d selesai)\nDeadline mendatang: %d\nSaldo: %.0f\nTransaksi: %d\n",
		stats.TotalCourses, stats.TotalTasks, stats.CompletedTasks,
		stats.UpcomingDeadlines, stats.Balance, stats.TransactionCount)
}

func exportSnapshot(ctx context.Context, session *config.Session) {
	export, err := session.Settings().ExportSnapshot(ctx)
	if err != nil {
		printError(ctx, err)
		return
	}

	dir := "./storage/exports"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		printError(ctx, err)
		return
	}

	path := filepath.Join(dir, export.Filename)
	if err := os.WriteFile(path, export.Data, 0o644); err != nil {
		printError(ctx, err)
		return
	}

	fmt.Printf("Tersimpan di %s\n", path)
}

func setDarkMode(ctx context.Context, session *config.Session, args string) {
	enabled := strings.EqualFold(strings.TrimSpace(args), "on")
	if err := session.Settings().SetDarkMode(ctx, enabled); err != nil {
		printError(ctx, err)
		return
	}

	if enabled {
		fmt.Println("Mode gelap aktif")
	} else {
		fmt.Println("Mode gelap nonaktif")
	}
}

func clearAll(ctx context.Context, session *config.Session, scanner *bufio.Scanner) {
	fmt.Print("HAPUS SEMUA DATA? Aksi ini tidak dapat dibatalkan! (y/N) ")
	if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
		fmt.Println("Dibatalkan")
		return
	}

	if err := session.Settings().ClearAll(ctx); err != nil {
		printError(ctx, err)
	}
}
