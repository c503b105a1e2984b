package datatypes

import "testing"

func TestEnterPathRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     EnterPathRequest
		wantErr bool
	}{
		{
			name: "valid single command",
			req: EnterPathRequest{
				Start:    Point{X: 10, Y: 22},
				Commands: []CommandDTO{{Direction: "east", Steps: 2}},
			},
			wantErr: false,
		},
		{
			name: "valid multiple commands",
			req: EnterPathRequest{
				Start: Point{X: 0, Y: 0},
				Commands: []CommandDTO{
					{Direction: "east", Steps: 2},
					{Direction: "north", Steps: 1},
				},
			},
			wantErr: false,
		},
		{
			name: "zero steps is legal",
			req: EnterPathRequest{
				Start:    Point{X: 0, Y: 0},
				Commands: []CommandDTO{{Direction: "east", Steps: 0}},
			},
			wantErr: false,
		},
		{
			name: "missing commands",
			req: EnterPathRequest{
				Start:    Point{X: 0, Y: 0},
				Commands: nil,
			},
			wantErr: true,
		},
		{
			name: "unknown direction",
			req: EnterPathRequest{
				Start:    Point{X: 0, Y: 0},
				Commands: []CommandDTO{{Direction: "northeast", Steps: 1}},
			},
			wantErr: true,
		},
		{
			name: "empty direction",
			req: EnterPathRequest{
				Start:    Point{X: 0, Y: 0},
				Commands: []CommandDTO{{Direction: "", Steps: 1}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
