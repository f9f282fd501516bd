package http

const homeContentType = "text/html;charset=UTF-8"

// homePage is served for requests to the bare root path.
const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta name="robots" content="noindex, nofollow">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Website</title>
	<meta name="description" content="Wow"/>
	<meta property="og:description" content="Wow"/>
	<meta property="og:locale" content="en_US"/>
	<meta name="twitter:card" content="summary"/>
	<meta property="twitter:title" content="Website"/>
	<style>
		h1 {
			font-family: "Times New Roman", Times, serif;
			text-align: center;
			margin: 0 auto;
			position: absolute;
			top: 50%;
			left: 50%;
			transform: translate(-50%, -50%);
		}
	</style>
</head>
<body>
	<h1>Website</h1>
</body>
</html>`
