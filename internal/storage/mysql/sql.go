package mysql

// -----------------------------------------------------------------------------
// TEAM QUERIES
// -----------------------------------------------------------------------------

// Single team joined with its tour, guide and all four flight airports in one
// round trip. Airport joins are aliased per leg.
const getTeamDetailSQL = `
SELECT
  t.id,
  t.team,
  tr.tour,
  tr.id,
  tr.number_of_days,
  tr.number_of_nights,
  t.starts_at,
  t.ends_at,
  g.name,
  g.id,
  g.username,
  t.flight_outward_no,
  t.flight_outward_departure,
  oda.airport,
  oda.id,
  t.flight_outward_landing,
  ola.airport,
  ola.id,
  t.flight_return_no,
  t.flight_return_departure,
  rda.airport,
  rda.id,
  t.flight_return_landing,
  rla.airport,
  rla.id
FROM teams t
INNER JOIN guides g ON g.id = t.guide_id
INNER JOIN tours tr ON tr.id = t.tour_id
LEFT JOIN airports oda ON oda.id = t.flight_outward_departure_airport
LEFT JOIN airports ola ON ola.id = t.flight_outward_landing_airport
LEFT JOIN airports rda ON rda.id = t.flight_return_departure_airport
LEFT JOIN airports rla ON rla.id = t.flight_return_landing_airport
WHERE t.team = ?
LIMIT 1
`

const teamRefSQL = `SELECT id, team FROM teams WHERE team = ? LIMIT 1`

const listTeamsBaseSQL = `
SELECT
  t.id,
  t.team,
  t.tour_id,
  tr.tour,
  tr.number_of_days,
  tr.number_of_nights,
  t.starts_at,
  t.ends_at`

const listTeamsGuideColsSQL = `,
  g.id,
  g.name,
  g.username`

const listTeamsFromSQL = `
FROM teams t
LEFT JOIN tours tr ON tr.id = t.tour_id
INNER JOIN guides g ON g.id = t.guide_id
`

const insertTeamSQL = `
INSERT INTO teams
  (team, tour_id, starts_at, ends_at, guide_id,
   flight_outward_no, flight_outward_departure, flight_outward_departure_airport,
   flight_outward_landing, flight_outward_landing_airport,
   flight_return_no, flight_return_departure, flight_return_departure_airport,
   flight_return_landing, flight_return_landing_airport)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateTeamSQL = `
UPDATE teams SET
  team = ?,
  tour_id = ?,
  starts_at = ?,
  ends_at = ?,
  guide_id = ?,
  flight_outward_no = ?,
  flight_outward_departure = ?,
  flight_outward_departure_airport = ?,
  flight_outward_landing = ?,
  flight_outward_landing_airport = ?,
  flight_return_no = ?,
  flight_return_departure = ?,
  flight_return_departure_airport = ?,
  flight_return_landing = ?,
  flight_return_landing_airport = ?
WHERE team = ?
`

const deleteTeamSQL = `DELETE FROM teams WHERE team = ?`

// -----------------------------------------------------------------------------
// ACTIVITY QUERIES
// -----------------------------------------------------------------------------

const listActivitiesSQL = `
SELECT
  a.id,
  a.activity,
  a.activity_time,
  a.team_id,
  h.id,
  h.housing,
  a.plate_of_vehicle,
  a.contact_of_driver,
  v.id,
  v.company,
  r.id,
  r.restaurant,
  ap.id,
  ap.airport
FROM activities a
LEFT JOIN housings h ON h.id = a.hotel_id
LEFT JOIN vehicles v ON v.id = a.company_of_vehicle
LEFT JOIN restaurants r ON r.id = a.restaurant_id
LEFT JOIN airports ap ON ap.id = a.airport_id
WHERE a.team_id = ?
ORDER BY a.activity_time, a.id
`

const insertActivitySQL = `
INSERT INTO activities
  (activity, team_id, activity_time, hotel_id, plate_of_vehicle,
   contact_of_driver, company_of_vehicle, restaurant_id, airport_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateActivitySQL = `
UPDATE activities SET
  activity = ?,
  activity_time = ?,
  hotel_id = ?,
  plate_of_vehicle = ?,
  contact_of_driver = ?,
  company_of_vehicle = ?,
  restaurant_id = ?,
  airport_id = ?
WHERE id = ?
`

const deleteActivityScopedSQL = `DELETE FROM activities WHERE id = ? AND team_id = ?`

// -----------------------------------------------------------------------------
// TOURIST QUERIES
// -----------------------------------------------------------------------------

const getTouristSQL = `
SELECT
  t.name,
  t.birth,
  g.gender,
  g.id,
  n.nationality,
  n.id,
  t.passport_no,
  t.email,
  t.phone,
  t.address,
  t.intimate,
  t.intimacy,
  t.intimate_phone
FROM tourists t
LEFT JOIN genders g ON g.id = t.gender_id
LEFT JOIN nationalities n ON n.id = t.nationality_id
WHERE t.id = ?
LIMIT 1
`

// Roster of a team: profile plus that team's payment record, labels resolved
// in the same query.
const listTeamTouristsSQL = `
SELECT
  t.id,
  t.name,
  t.birth,
  t.gender_id,
  g.gender,
  t.nationality_id,
  n.nationality,
  t.passport_no,
  t.email,
  t.phone,
  t.address,
  t.intimate,
  t.intimacy,
  t.intimate_phone,
  p.amount,
  p.is_payed,
  c.currency,
  c.id,
  pm.method,
  pm.id
FROM tourists t
INNER JOIN tourist_teams tt ON tt.tourist_id = t.id
LEFT JOIN genders g ON g.id = t.gender_id
LEFT JOIN nationalities n ON n.id = t.nationality_id
LEFT JOIN tourists_payments p ON p.tourist_id = t.id AND p.team_id = tt.team_id
LEFT JOIN payment_methods pm ON pm.id = p.payment_method_id
LEFT JOIN currencies c ON c.id = p.currency_id
WHERE tt.team_id = ?
ORDER BY t.id
`

const findTouristByPassportSQL = `SELECT id FROM tourists WHERE passport_no = ? LIMIT 1`

const insertTouristSQL = `
INSERT INTO tourists
  (name, birth, gender_id, nationality_id, passport_no, email, phone,
   address, intimate, intimacy, intimate_phone)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const linkTouristTeamSQL = `INSERT INTO tourist_teams (tourist_id, team_id) VALUES (?, ?)`

const insertPaymentSQL = `
INSERT INTO tourists_payments
  (team_id, tourist_id, amount, currency_id, payment_method_id, is_payed)
VALUES (?, ?, ?, ?, ?, ?)
`

const updateTouristSQL = `
UPDATE tourists SET
  name = ?,
  birth = ?,
  gender_id = ?,
  nationality_id = ?,
  passport_no = ?,
  email = ?,
  phone = ?,
  address = ?,
  intimate = ?,
  intimacy = ?,
  intimate_phone = ?
WHERE id = ?
`

const updatePaymentSQL = `
UPDATE tourists_payments SET
  amount = ?,
  is_payed = ?,
  currency_id = ?
WHERE tourist_id = ?
`

const deleteTouristSQL = `DELETE FROM tourists WHERE id = ?`

// -----------------------------------------------------------------------------
// GUIDE QUERIES
// -----------------------------------------------------------------------------

const guideDetailColsSQL = `
SELECT
  g.id,
  g.name,
  g.username,
  l.language,
  l.id,
  g.email,
  g.phone,
  g.passport_no,
  n.nationality,
  n.id,
  g.birth,
  g.intimate,
  g.intimacy,
  g.intimate_phone,
  g.is_admin
FROM guides g
LEFT JOIN languages l ON l.id = g.language_id
LEFT JOIN nationalities n ON n.id = g.nationality_id
`

const getGuideForLoginSQL = `
SELECT id, name, username, password, is_admin
FROM guides
WHERE username = ?
LIMIT 1
`

const guideRosterSQL = `SELECT id, name FROM guides ORDER BY id`

const insertGuideSQL = `
INSERT INTO guides
  (name, username, password, language_id, birth, nationality_id, passport_no,
   email, phone, intimate, intimacy, intimate_phone, is_admin)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateGuideSQL = `
UPDATE guides SET
  name = ?,
  username = ?,
  password = ?,
  language_id = ?,
  birth = ?,
  nationality_id = ?,
  passport_no = ?,
  email = ?,
  phone = ?,
  intimate = ?,
  intimacy = ?,
  intimate_phone = ?,
  is_admin = ?
WHERE id = ?
`

const deleteGuideSQL = `DELETE FROM guides WHERE id = ?`

// -----------------------------------------------------------------------------
// TOUR / RESTAURANT / HOUSING / VEHICLE QUERIES
// -----------------------------------------------------------------------------

const listToursSQL = `
SELECT id, tour, city_id, number_of_days, number_of_nights
FROM tours
ORDER BY id
`

const listToursWithCitySQL = `
SELECT t.id, t.tour, c.city, t.city_id, t.number_of_days, t.number_of_nights
FROM tours t
INNER JOIN cities c ON c.id = t.city_id
ORDER BY t.id
`

const insertTourSQL = `
INSERT INTO tours (tour, city_id, number_of_days, number_of_nights)
VALUES (?, ?, ?, ?)
`

const updateTourSQL = `
UPDATE tours SET tour = ?, city_id = ?, number_of_days = ?, number_of_nights = ?
WHERE id = ?
`

const deleteTourSQL = `DELETE FROM tours WHERE id = ?`

const listRestaurantsSQL = `
SELECT r.id, r.restaurant, c.city, r.city_id, r.district, r.address,
       r.officer, r.contact_officer, r.contact_restaurant
FROM restaurants r
INNER JOIN cities c ON c.id = r.city_id
ORDER BY r.id
`

const insertRestaurantSQL = `
INSERT INTO restaurants
  (restaurant, city_id, district, address, officer, contact_officer, contact_restaurant)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

const updateRestaurantSQL = `
UPDATE restaurants SET
  restaurant = ?, city_id = ?, district = ?, address = ?,
  officer = ?, contact_officer = ?, contact_restaurant = ?
WHERE id = ?
`

const deleteRestaurantSQL = `DELETE FROM restaurants WHERE id = ?`

const listHousingsSQL = `
SELECT h.id, h.housing, c.city, h.city_id, h.district, h.address,
       h.officer, h.contact_officer, h.contact_housing
FROM housings h
INNER JOIN cities c ON c.id = h.city_id
ORDER BY h.id
`

const insertHousingSQL = `
INSERT INTO housings
  (housing, city_id, district, address, officer, contact_officer, contact_housing)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

const updateHousingSQL = `
UPDATE housings SET
  housing = ?, city_id = ?, district = ?, address = ?,
  officer = ?, contact_officer = ?, contact_housing = ?
WHERE id = ?
`

const deleteHousingSQL = `DELETE FROM housings WHERE id = ?`

const listVehiclesSQL = `
SELECT id, company, contact_company, officer, contact_officer
FROM vehicles
ORDER BY id
`

const vehicleRefsSQL = `SELECT id, company FROM vehicles ORDER BY id`

const insertVehicleSQL = `
INSERT INTO vehicles (company, contact_company, officer, contact_officer)
VALUES (?, ?, ?, ?)
`

const updateVehicleSQL = `
UPDATE vehicles SET company = ?, contact_company = ?, officer = ?, contact_officer = ?
WHERE id = ?
`

const deleteVehicleSQL = `DELETE FROM vehicles WHERE id = ?`
