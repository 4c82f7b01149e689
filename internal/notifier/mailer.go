package notifier

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"geo-attendance-backend/internal/model"

	"gopkg.in/gomail.v2"
	"gorm.io/datatypes"
)

type LeaveNotifier interface {
	LeaveDecided(ctx context.Context, leave *model.LeaveRequest, employee *model.User) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// New mengembalikan Mailer jika SMTP dikonfigurasi, selain itu notifier
// yang hanya menulis log.
func New(cfg SMTPConfig) LeaveNotifier {
	if cfg.Host == "" {
		return LogNotifier{}
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	dialer sender
	from   string
}

func (m *Mailer) LeaveDecided(ctx context.Context, leave *model.LeaveRequest, employee *model.User) error {
	if employee == nil || employee.Email == nil || *employee.Email == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := BuildLeaveMessage(m.from, leave, employee)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send leave notification to %s: %w", *employee.Email, err)
	}
	return nil
}

// BuildLeaveMessage menyusun email keputusan pengajuan izin/cuti.
func BuildLeaveMessage(from string, leave *model.LeaveRequest, employee *model.User) *gomail.Message {
	decision := "disetujui"
	if leave.Status == model.LeaveStatusRejected {
		decision = "ditolak"
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Halo %s,\n\n", employee.FullName)
	fmt.Fprintf(&body, "Pengajuan %s Anda untuk tanggal %s s/d %s telah %s.\n",
		leave.LeaveType, formatDate(leave.StartDate), formatDate(leave.EndDate), decision)
	if leave.RejectionReason != nil && *leave.RejectionReason != "" {
		fmt.Fprintf(&body, "Alasan: %s\n", *leave.RejectionReason)
	}

	msg := gomail.NewMessage(gomail.SetEncoding(gomail.Unencoded))
	msg.SetHeader("From", from)
	msg.SetHeader("To", *employee.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Pengajuan %s %s", leave.LeaveType, decision))
	msg.SetBody("text/plain", body.String())
	return msg
}

type LogNotifier struct{}

func (LogNotifier) LeaveDecided(_ context.Context, leave *model.LeaveRequest, employee *model.User) error {
	log.Printf("[INFO] pengajuan #%d user #%d: %s (SMTP tidak dikonfigurasi)", leave.ID, employee.ID, leave.Status)
	return nil
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format("02-01-2006")
}
