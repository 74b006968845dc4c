package database

import "testing"

func TestDSN(t *testing.T) {
	cases := []struct {
		name string
		user string
		pass string
		want string
	}{
		{
			name: "with password",
			user: "hackathon",
			pass: "s3cret",
			want: "hackathon:s3cret@tcp(db.internal:3306)/hackathons?charset=utf8mb4&parseTime=true&loc=UTC",
		},
		{
			name: "empty password omits the colon",
			user: "root",
			pass: "",
			want: "root@tcp(db.internal:3306)/hackathons?charset=utf8mb4&parseTime=true&loc=UTC",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := dsn(tc.user, tc.pass, "db.internal", "3306", "hackathons")
			if got != tc.want {
				t.Errorf("dsn = %q, want %q", got, tc.want)
			}
		})
	}
}
