package testsite

// Page bodies served by the test site. Kept as plain HTML strings; the pages
// are small and static enough that a template engine would be overhead.

const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Playwright enables reliable end-to-end testing for modern web apps.</title>
</head>
<body>
<nav class="navbar">
  <a href="/">Playwright</a>
  <a href="/docs/intro">Docs</a>
  <a href="/docs/api">API</a>
  <a href="/community">Community</a>
  <button class="search-toggle" type="button">Search</button>
</nav>
<main>
  <h1 class="hero__title">Playwright enables reliable end-to-end testing for modern web apps.</h1>
  <a class="getStarted" href="/docs/intro">Get started</a>
</main>
</body>
</html>
`

const docsIntroPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Installation | Playwright</title>
</head>
<body>
<nav class="navbar">
  <a href="/">Playwright</a>
  <a href="/docs/intro">Docs</a>
</nav>
<h1>Installation</h1>
<p>Playwright Test was created specifically to accommodate the needs of end-to-end testing.</p>
</body>
</html>
`

const docsAPIPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>API reference | Playwright</title>
</head>
<body>
<h1>API reference</h1>
</body>
</html>
`

const communityPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Community | Playwright</title>
</head>
<body>
<h1>Welcome to the community</h1>
</body>
</html>
`

const formPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Registration form</title>
</head>
<body>
<h1>Register</h1>
<form method="post" action="/form/submit" enctype="multipart/form-data">
  <label for="name">Name</label>
  <input type="text" id="name" name="name">

  <label for="email">Email</label>
  <input type="email" id="email" name="email">

  <label for="password">Password</label>
  <input type="password" id="password" name="password">

  <label for="country">Country</label>
  <select id="country" name="country">
    <option value="">Pick one</option>
    <option value="br">Brazil</option>
    <option value="de">Germany</option>
    <option value="pt">Portugal</option>
    <option value="se">Sweden</option>
  </select>

  <label><input type="checkbox" id="subscribe" name="subscribe" value="1"> Subscribe to newsletter</label>

  <label for="comments">Comments</label>
  <textarea id="comments" name="comments" rows="4"></textarea>

  <label for="avatar">Avatar</label>
  <input type="file" id="avatar" name="avatar">

  <button type="submit" id="submit-btn">Send</button>
</form>
</body>
</html>
`

const submitPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Registration received</title>
</head>
<body>
<h1>Thanks for registering</h1>
<dl>
  <dt>Name</dt><dd id="echo-name">%s</dd>
  <dt>Email</dt><dd id="echo-email">%s</dd>
  <dt>Country</dt><dd id="echo-country">%s</dd>
  <dt>Subscribed</dt><dd id="echo-subscribe">%s</dd>
  <dt>Comments</dt><dd id="echo-comments">%s</dd>
  <dt>Avatar</dt><dd id="echo-avatar">%s</dd>
</dl>
</body>
</html>
`

const usersPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Team</title>
</head>
<body>
<h1>Team members</h1>
<ul id="user-list"></ul>
<p id="user-error" hidden>failed to load users</p>
<script>
fetch('/api/users')
  .then(function (res) {
    if (!res.ok) { throw new Error('bad status ' + res.status); }
    return res.json();
  })
  .then(function (data) {
    var list = document.getElementById('user-list');
    data.users.forEach(function (user) {
      var item = document.createElement('li');
      item.textContent = user.name;
      list.appendChild(item);
    });
  })
  .catch(function () {
    document.getElementById('user-error').hidden = false;
  });
</script>
</body>
</html>
`

const dialogsPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Dialog playground</title>
</head>
<body>
<button id="alert-btn" type="button">Alert</button>
<button id="confirm-btn" type="button">Confirm</button>
<button id="prompt-btn" type="button">Prompt</button>
<p id="dialog-result"></p>
<script>
var result = document.getElementById('dialog-result');
document.getElementById('alert-btn').addEventListener('click', function () {
  alert('Heads up!');
  result.textContent = 'alerted';
});
document.getElementById('confirm-btn').addEventListener('click', function () {
  result.textContent = confirm('Proceed?') ? 'confirmed' : 'cancelled';
});
document.getElementById('prompt-btn').addEventListener('click', function () {
  var name = prompt('Your name?');
  result.textContent = name ? 'hello ' + name : 'no name';
});
</script>
</body>
</html>
`

const downloadPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Downloads</title>
</head>
<body>
<a id="download-report" href="/files/report.csv" download>Download report</a>
</body>
</html>
`

const geoPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Where am I</title>
</head>
<body>
<button id="locate-btn" type="button">Locate me</button>
<p id="coords"></p>
<script>
document.getElementById('locate-btn').addEventListener('click', function () {
  navigator.geolocation.getCurrentPosition(function (pos) {
    document.getElementById('coords').textContent =
      pos.coords.latitude.toFixed(4) + ',' + pos.coords.longitude.toFixed(4);
  }, function () {
    document.getElementById('coords').textContent = 'denied';
  });
});
</script>
</body>
</html>
`

const agentPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Client info</title>
</head>
<body>
<p>User agent: <span id="ua">%s</span></p>
<p>Viewport: <span id="vw"></span></p>
<script>
document.getElementById('vw').textContent = window.innerWidth + 'x' + window.innerHeight;
</script>
</body>
</html>
`

const slowPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Patience</title>
</head>
<body>
<p>Something will appear shortly.</p>
<div id="late" hidden>finally here</div>
<script>
setTimeout(function () {
  document.getElementById('late').hidden = false;
}, 1000);
</script>
</body>
</html>
`

const scrollPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Long page</title>
</head>
<body>
<h1 id="top-marker">Top of a very long page</h1>
<div style="height: 4000px"></div>
<p id="bottom-marker">You made it to the bottom.</p>
</body>
</html>
`

const protectedPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Restricted</title>
</head>
<body>
<h1 id="secret">restricted area</h1>
</body>
</html>
`

const loginPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Signed in</title>
</head>
<body>
<p id="login-status">signed in</p>
<p><a href="/cookie">Check session</a></p>
</body>
</html>
`

const cookiePageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Session</title>
</head>
<body>
<p>Session: <span id="session">%s</span></p>
</body>
</html>
`
