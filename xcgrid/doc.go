/*
 * doc.go, part of goxc.
 *
 * Copyright 2016 The goxc developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package xcgrid evaluates a correlation functional over whole tables of grid
points, concurrently, and stores the results in a small compressed on-disk
table format.

A point table is a gonum mat.Dense with one row per point and the five columns
rho_up, rho_down, sigma_upup, sigma_updown, sigma_downdown. The result table
has one row per point and 1, 6 or 21 columns depending on the derivative
order: the energy per particle, then vrho (2) and vsigma (3), then v2rho2 (3),
v2rhosigma (6) and v2sigma2 (6), in the packed layouts of the xc package.

The on-disk format is line-oriented ASCII under a compression layer chosen by
the file extension: gzip for names ending in 'z', raw deflate for 'r', and
z-standard for anything else. A header of key=value lines ends with a line
"** <ncols>"; each following line holds the columns of one row.*/
package xcgrid
