// This file is part of vgasim.
//
// vgasim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgasim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgasim.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"

	"github.com/jetsetilly/vgasim/logger"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress of the HTTP server.
const DefaultAddress = "localhost:12600"

const page = "/debug/statsview"

// charts are refreshed at the same rate as the performance report
const interval = 1000

// ten minutes of history
const maxPoints = 600

// URL returns the address of the statistics page for a server listening on
// addr.
func URL(addr string) string {
	return fmt.Sprintf("http://%s%s", addr, page)
}

// Server is a running statistics server.
type Server struct {
	mgr *statsview.ViewManager
}

// Launch starts the statistics server on addr in a new goroutine. The address
// of the statistics page is written to output.
func Launch(output io.Writer, addr string) *Server {
	viewer.SetConfiguration(
		viewer.WithAddr(addr),
		viewer.WithInterval(interval),
		viewer.WithMaxPoints(maxPoints),
		viewer.WithTimeFormat("15:04:05"),
	)

	srv := &Server{mgr: statsview.New()}

	go func() {
		if err := srv.mgr.Start(); err != nil {
			logger.Logf(logger.Allow, "statsview", "server stopped: %v", err)
		}
	}()

	fmt.Fprintf(output, "simulation stats available at %s\n", URL(addr))

	return srv
}

// Stop the server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
}
