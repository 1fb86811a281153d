/*
 * Copyright (c) 2025 by the CompactGantt authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package timescale

import (
	"fmt"

	"github.com/haymanjoyce/compactgantt-sub000/internal/domain"
)

// PeriodLabel picks the caption for one scale interval from its on-screen
// width. Wide intervals get the full form, narrow ones the short form, and
// intervals below the short threshold get no caption at all. Week intervals
// only have the numeric form, shown from the short threshold up.
func PeriodLabel(g Granularity, start domain.Date, widthPx, fullWidth, shortWidth float64) string {
	switch g {
	case Years:
		if widthPx >= fullWidth {
			return start.Format("2006")
		}
		if widthPx >= shortWidth {
			return start.Format("06")
		}
	case Months:
		if widthPx >= fullWidth {
			return start.Format("Jan")
		}
		if widthPx >= shortWidth {
			return start.Format("Jan")[:1]
		}
	case Weeks:
		if widthPx >= shortWidth {
			_, week := start.ISOWeek()
			return fmt.Sprintf("%02d", week)
		}
	case Days:
		if widthPx >= fullWidth {
			return start.Format("Mon")
		}
		if widthPx >= shortWidth {
			return start.Format("Mon")[:1]
		}
	}
	return ""
}
